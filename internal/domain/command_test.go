package domain

import (
	"errors"
	"testing"
)

func mustIdentifier(t *testing.T, name string) Identifier {
	t.Helper()
	id, err := NewIdentifier(name)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestCreateSaveFileCommand(t *testing.T) {
	lib := mustIdentifier(t, "AKANSHA231")
	savf := mustIdentifier(t, "TESTFI1E")

	t.Run("default description", func(t *testing.T) {
		got, err := CreateSaveFileCommand(lib, savf, "")
		if err != nil {
			t.Fatal(err)
		}
		want := "CRTSAVF FILE(AKANSHA231/TESTFI1E) TEXT('A SaveFile from iLibrary')"
		if got != want {
			t.Errorf("command = %q, want %q", got, want)
		}
	})

	t.Run("custom description", func(t *testing.T) {
		got, err := CreateSaveFileCommand(lib, savf, "nightly backup")
		if err != nil {
			t.Fatal(err)
		}
		want := "CRTSAVF FILE(AKANSHA231/TESTFI1E) TEXT('nightly backup')"
		if got != want {
			t.Errorf("command = %q, want %q", got, want)
		}
	})

	t.Run("apostrophes are doubled", func(t *testing.T) {
		got, err := CreateSaveFileCommand(lib, savf, "fred's library")
		if err != nil {
			t.Fatal(err)
		}
		want := "CRTSAVF FILE(AKANSHA231/TESTFI1E) TEXT('fred''s library')"
		if got != want {
			t.Errorf("command = %q, want %q", got, want)
		}
	})

	t.Run("control characters rejected", func(t *testing.T) {
		if _, err := CreateSaveFileCommand(lib, savf, "a\nb"); !errors.Is(err, ErrInvalidDescription) {
			t.Errorf("error = %v, want ErrInvalidDescription", err)
		}
	})

	t.Run("overlong description rejected", func(t *testing.T) {
		long := make([]byte, maxDescriptionLen+1)
		for i := range long {
			long[i] = 'x'
		}
		if _, err := CreateSaveFileCommand(lib, savf, string(long)); !errors.Is(err, ErrInvalidDescription) {
			t.Errorf("error = %v, want ErrInvalidDescription", err)
		}
	})
}

func TestSaveLibraryCommand(t *testing.T) {
	lib := mustIdentifier(t, "AKANSHA231")
	savf := mustIdentifier(t, "TESTFI1E")

	got, err := SaveLibraryCommand(lib, lib, savf, "")
	if err != nil {
		t.Fatal(err)
	}
	want := "SAVLIB LIB(AKANSHA231) DEV(*SAVF) SAVF(AKANSHA231/TESTFI1E) TGTRLS(*CURRENT)"
	if got != want {
		t.Errorf("command = %q, want %q", got, want)
	}

	got, err = SaveLibraryCommand(lib, mustIdentifier(t, "BACKUPS"), savf, "V7R4M0")
	if err != nil {
		t.Fatal(err)
	}
	want = "SAVLIB LIB(AKANSHA231) DEV(*SAVF) SAVF(BACKUPS/TESTFI1E) TGTRLS(V7R4M0)"
	if got != want {
		t.Errorf("command = %q, want %q", got, want)
	}

	if _, err := SaveLibraryCommand(lib, lib, savf, "*CURRENT) BAD"); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("error = %v, want ErrInvalidIdentifier", err)
	}
}

func TestCopyToStreamCommand(t *testing.T) {
	lib := mustIdentifier(t, "AKANSHA231")
	savf := mustIdentifier(t, "TESTFI1E")

	got, err := CopyToStreamCommand(lib, savf, "/home/user/TESTFI1E.savf")
	if err != nil {
		t.Fatal(err)
	}
	want := "CPYTOSTMF FROMMBR('/QSYS.LIB/AKANSHA231.LIB/TESTFI1E.FILE') TOSTMF('/home/user/TESTFI1E.savf') STMFOPT(*REPLACE)"
	if got != want {
		t.Errorf("command = %q, want %q", got, want)
	}

	if _, err := CopyToStreamCommand(lib, savf, "/tmp/a'b"); err == nil {
		t.Error("quoted path accepted, want error")
	}
}

func TestRemoveStreamFileCommand(t *testing.T) {
	got, err := RemoveStreamFileCommand("/home/user/TESTFI1E.savf")
	if err != nil {
		t.Fatal(err)
	}
	want := "QSH CMD('rm -r /home/user/TESTFI1E.savf')"
	if got != want {
		t.Errorf("command = %q, want %q", got, want)
	}

	// A path with whitespace would change the shape of the rm command.
	if _, err := RemoveStreamFileCommand("/tmp/a b"); err == nil {
		t.Error("path with space accepted, want error")
	}
	if _, err := RemoveStreamFileCommand(""); err == nil {
		t.Error("empty path accepted, want error")
	}
}

func TestDeleteFileCommand(t *testing.T) {
	got := DeleteFileCommand(mustIdentifier(t, "AKANSHA231"), mustIdentifier(t, "TESTFI1E"))
	want := "DLTF FILE(AKANSHA231/TESTFI1E)"
	if got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}
