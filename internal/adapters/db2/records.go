package db2

// The record types below mirror the fixed column order of the catalog
// views they are scanned from. The fields() method of each record lists
// the scan targets in exactly that order; adding, removing, or moving a
// field without adjusting fields() breaks the positional mapping.

// LibrarySummary is one row of QSYS2.LIBRARY_INFO.
type LibrarySummary struct {
	ObjectCount                  Integer   `json:"OBJECT_COUNT"`
	LibrarySize                  Integer   `json:"LIBRARY_SIZE"`
	LibrarySizeComplete          Text      `json:"LIBRARY_SIZE_COMPLETE"`
	LibraryType                  Text      `json:"LIBRARY_TYPE"`
	TextDescription              Text      `json:"TEXT_DESCRIPTION"`
	IASPName                     Text      `json:"IASP_NAME"`
	IASPNumber                   Integer   `json:"IASP_NUMBER"`
	CreateAuthority              Text      `json:"CREATE_AUTHORITY"`
	ObjectAuditCreate            Text      `json:"OBJECT_AUDIT_CREATE"`
	Journaled                    Text      `json:"JOURNALED"`
	JournalLibrary               Text      `json:"JOURNAL_LIBRARY"`
	JournalName                  Text      `json:"JOURNAL_NAME"`
	InheritJournaling            Text      `json:"INHERIT_JOURNALING"`
	JournalInheritRules          Text      `json:"JOURNAL_INHERIT_RULES"`
	JournalStartTimestamp        Timestamp `json:"JOURNAL_START_TIMESTAMP"`
	ApplyStartingReceiverLibrary Text      `json:"APPLY_STARTING_RECEIVER_LIBRARY"`
	ApplyStartingReceiver        Text      `json:"APPLY_STARTING_RECEIVER"`
	ApplyStartingReceiverASP     Text      `json:"APPLY_STARTING_RECEIVER_ASP"`
}

func (r *LibrarySummary) fields() []interface{} {
	return []interface{}{
		&r.ObjectCount,
		&r.LibrarySize,
		&r.LibrarySizeComplete,
		&r.LibraryType,
		&r.TextDescription,
		&r.IASPName,
		&r.IASPNumber,
		&r.CreateAuthority,
		&r.ObjectAuditCreate,
		&r.Journaled,
		&r.JournalLibrary,
		&r.JournalName,
		&r.InheritJournaling,
		&r.JournalInheritRules,
		&r.JournalStartTimestamp,
		&r.ApplyStartingReceiverLibrary,
		&r.ApplyStartingReceiver,
		&r.ApplyStartingReceiverASP,
	}
}

// ObjectRecord is one row of QSYS2.OBJECT_STATISTICS for a library.
type ObjectRecord struct {
	ObjName                      Text      `json:"OBJNAME"`
	ObjType                      Text      `json:"OBJTYPE"`
	ObjOwner                     Text      `json:"OBJOWNER"`
	ObjDefiner                   Text      `json:"OBJDEFINER"`
	ObjCreated                   Timestamp `json:"OBJCREATED"`
	ObjSize                      Number    `json:"OBJSIZE"`
	ObjText                      Text      `json:"OBJTEXT"`
	ObjLongName                  Text      `json:"OBJLONGNAME"`
	LastUsedTimestamp            Timestamp `json:"LAST_USED_TIMESTAMP"`
	LastUsedObject               Text      `json:"LAST_USED_OBJECT"`
	DaysUsedCount                Integer   `json:"DAYS_USED_COUNT"`
	LastResetTimestamp           Timestamp `json:"LAST_RESET_TIMESTAMP"`
	IASPNumber                   Integer   `json:"IASP_NUMBER"`
	IASPName                     Text      `json:"IASP_NAME"`
	ObjAttribute                 Text      `json:"OBJATTRIBUTE"`
	ObjLongSchema                Text      `json:"OBJLONGSCHEMA"`
	Text                         Text      `json:"TEXT"`
	SQLObjectType                Text      `json:"SQL_OBJECT_TYPE"`
	ObjLib                       Text      `json:"OBJLIB"`
	ChangeTimestamp              Timestamp `json:"CHANGE_TIMESTAMP"`
	UserChanged                  Text      `json:"USER_CHANGED"`
	SourceFile                   Text      `json:"SOURCE_FILE"`
	SourceLibrary                Text      `json:"SOURCE_LIBRARY"`
	SourceMember                 Text      `json:"SOURCE_MEMBER"`
	SourceTimestamp              Timestamp `json:"SOURCE_TIMESTAMP"`
	CreatedSystem                Text      `json:"CREATED_SYSTEM"`
	CreatedSystemVersion         Text      `json:"CREATED_SYSTEM_VERSION"`
	LicensedProgram              Text      `json:"LICENSED_PROGRAM"`
	LicensedProgramVersion       Text      `json:"LICENSED_PROGRAM_VERSION"`
	Compiler                     Text      `json:"COMPILER"`
	CompilerVersion              Text      `json:"COMPILER_VERSION"`
	ObjectControlLevel           Text      `json:"OBJECT_CONTROL_LEVEL"`
	BuildID                      Text      `json:"BUILD_ID"`
	PTFNumber                    Text      `json:"PTF_NUMBER"`
	APARID                       Text      `json:"APAR_ID"`
	UserDefinedAttribute         Text      `json:"USER_DEFINED_ATTRIBUTE"`
	AllowChangeByProgram         Text      `json:"ALLOW_CHANGE_BY_PROGRAM"`
	ChangedByProgram             Text      `json:"CHANGED_BY_PROGRAM"`
	Compressed                   Text      `json:"COMPRESSED"`
	PrimaryGroup                 Text      `json:"PRIMARY_GROUP"`
	StorageFreed                 Text      `json:"STORAGE_FREED"`
	AssociatedSpaceSize          Number    `json:"ASSOCIATED_SPACE_SIZE"`
	OptimumSpaceAlignment        Text      `json:"OPTIMUM_SPACE_ALIGNMENT"`
	OverflowStorage              Text      `json:"OVERFLOW_STORAGE"`
	ObjectDomain                 Text      `json:"OBJECT_DOMAIN"`
	ObjectAudit                  Text      `json:"OBJECT_AUDIT"`
	ObjectSigned                 Text      `json:"OBJECT_SIGNED"`
	SystemTrustedSource          Text      `json:"SYSTEM_TRUSTED_SOURCE"`
	MultipleSignatures           Text      `json:"MULTIPLE_SIGNATURES"`
	SaveTimestamp                Timestamp `json:"SAVE_TIMESTAMP"`
	RestoreTimestamp             Timestamp `json:"RESTORE_TIMESTAMP"`
	SaveWhileActiveTimestamp     Timestamp `json:"SAVE_WHILE_ACTIVE_TIMESTAMP"`
	SaveCommand                  Text      `json:"SAVE_COMMAND"`
	SaveDevice                   Text      `json:"SAVE_DEVICE"`
	SaveFileName                 Text      `json:"SAVE_FILE_NAME"`
	SaveFileLibrary              Text      `json:"SAVE_FILE_LIBRARY"`
	SaveVolume                   Text      `json:"SAVE_VOLUME"`
	SaveLabel                    Text      `json:"SAVE_LABEL"`
	SaveSequenceNumber           Integer   `json:"SAVE_SEQUENCE_NUMBER"`
	LastSaveSize                 Number    `json:"LAST_SAVE_SIZE"`
	Journaled                    Text      `json:"JOURNALED"`
	JournalName                  Text      `json:"JOURNAL_NAME"`
	JournalLibrary               Text      `json:"JOURNAL_LIBRARY"`
	JournalImages                Text      `json:"JOURNAL_IMAGES"`
	OmitJournalEntry             Text      `json:"OMIT_JOURNAL_ENTRY"`
	RemoteJournalFilter          Text      `json:"REMOTE_JOURNAL_FILTER"`
	JournalStartTimestamp        Timestamp `json:"JOURNAL_START_TIMESTAMP"`
	ApplyStartingReceiver        Text      `json:"APPLY_STARTING_RECEIVER"`
	ApplyStartingReceiverLibrary Text      `json:"APPLY_STARTING_RECEIVER_LIBRARY"`
	AuthorityCollectionValue     Text      `json:"AUTHORITY_COLLECTION_VALUE"`
}

func (r *ObjectRecord) fields() []interface{} {
	return []interface{}{
		&r.ObjName,
		&r.ObjType,
		&r.ObjOwner,
		&r.ObjDefiner,
		&r.ObjCreated,
		&r.ObjSize,
		&r.ObjText,
		&r.ObjLongName,
		&r.LastUsedTimestamp,
		&r.LastUsedObject,
		&r.DaysUsedCount,
		&r.LastResetTimestamp,
		&r.IASPNumber,
		&r.IASPName,
		&r.ObjAttribute,
		&r.ObjLongSchema,
		&r.Text,
		&r.SQLObjectType,
		&r.ObjLib,
		&r.ChangeTimestamp,
		&r.UserChanged,
		&r.SourceFile,
		&r.SourceLibrary,
		&r.SourceMember,
		&r.SourceTimestamp,
		&r.CreatedSystem,
		&r.CreatedSystemVersion,
		&r.LicensedProgram,
		&r.LicensedProgramVersion,
		&r.Compiler,
		&r.CompilerVersion,
		&r.ObjectControlLevel,
		&r.BuildID,
		&r.PTFNumber,
		&r.APARID,
		&r.UserDefinedAttribute,
		&r.AllowChangeByProgram,
		&r.ChangedByProgram,
		&r.Compressed,
		&r.PrimaryGroup,
		&r.StorageFreed,
		&r.AssociatedSpaceSize,
		&r.OptimumSpaceAlignment,
		&r.OverflowStorage,
		&r.ObjectDomain,
		&r.ObjectAudit,
		&r.ObjectSigned,
		&r.SystemTrustedSource,
		&r.MultipleSignatures,
		&r.SaveTimestamp,
		&r.RestoreTimestamp,
		&r.SaveWhileActiveTimestamp,
		&r.SaveCommand,
		&r.SaveDevice,
		&r.SaveFileName,
		&r.SaveFileLibrary,
		&r.SaveVolume,
		&r.SaveLabel,
		&r.SaveSequenceNumber,
		&r.LastSaveSize,
		&r.Journaled,
		&r.JournalName,
		&r.JournalLibrary,
		&r.JournalImages,
		&r.OmitJournalEntry,
		&r.RemoteJournalFilter,
		&r.JournalStartTimestamp,
		&r.ApplyStartingReceiver,
		&r.ApplyStartingReceiverLibrary,
		&r.AuthorityCollectionValue,
	}
}

// MemberRecord is one row of QSYS2.SYSMEMBERSTAT for a source physical
// file member.
type MemberRecord struct {
	TableSchema                  Text      `json:"TABLE_SCHEMA"`
	TableName                    Text      `json:"TABLE_NAME"`
	SystemTableSchema            Text      `json:"SYSTEM_TABLE_SCHEMA"`
	SystemTableName              Text      `json:"SYSTEM_TABLE_NAME"`
	SystemTableMember            Text      `json:"SYSTEM_TABLE_MEMBER"`
	SourceType                   Text      `json:"SOURCE_TYPE"`
	LastSourceUpdateTimestamp    Timestamp `json:"LAST_SOURCE_UPDATE_TIMESTAMP"`
	TextDescription              Text      `json:"TEXT_DESCRIPTION"`
	CreateTimestamp              Timestamp `json:"CREATE_TIMESTAMP"`
	LastChangeTimestamp          Timestamp `json:"LAST_CHANGE_TIMESTAMP"`
	LastSaveTimestamp            Timestamp `json:"LAST_SAVE_TIMESTAMP"`
	LastRestoreTimestamp         Timestamp `json:"LAST_RESTORE_TIMESTAMP"`
	LastUsedTimestamp            Timestamp `json:"LAST_USED_TIMESTAMP"`
	DaysUsedCount                Integer   `json:"DAYS_USED_COUNT"`
	LastResetTimestamp           Timestamp `json:"LAST_RESET_TIMESTAMP"`
	TablePartition               Text      `json:"TABLE_PARTITION"`
	PartitionType                Text      `json:"PARTITION_TYPE"`
	PartitionNumber              Integer   `json:"PARTITION_NUMBER"`
	NumberDistributedPartitions  Integer   `json:"NUMBER_DISTRIBUTED_PARTITIONS"`
	NumberPartitioningKeys       Integer   `json:"NUMBER_PARTITIONING_KEYS"`
	PartitioningKeys             Text      `json:"PARTITIONING_KEYS"`
	LowInclusive                 Text      `json:"LOWINCLUSIVE"`
	LowValue                     Text      `json:"LOWVALUE"`
	HighInclusive                Text      `json:"HIGHINCLUSIVE"`
	HighValue                    Text      `json:"HIGHVALUE"`
	NumberRows                   Number    `json:"NUMBER_ROWS"`
	NumberPages                  Number    `json:"NUMBER_PAGES"`
	Overflow                     Number    `json:"OVERFLOW"`
	AvgRowSize                   Number    `json:"AVGROWSIZE"`
	NumberDeletedRows            Number    `json:"NUMBER_DELETED_ROWS"`
	DataSize                     Number    `json:"DATA_SIZE"`
	VariableLengthSize           Number    `json:"VARIABLE_LENGTH_SIZE"`
	VariableLengthSegments       Integer   `json:"VARIABLE_LENGTH_SEGMENTS"`
	ColumnStatsSize              Number    `json:"COLUMN_STATS_SIZE"`
	MaintainedTemporaryIndexSize Number    `json:"MAINTAINED_TEMPORARY_INDEX_SIZE"`
	NumberDistinctIndexes        Integer   `json:"NUMBER_DISTINCT_INDEXES"`
	OpenOperations               Number    `json:"OPEN_OPERATIONS"`
	CloseOperations              Number    `json:"CLOSE_OPERATIONS"`
	InsertOperations             Number    `json:"INSERT_OPERATIONS"`
	BlockedInsertOperations      Number    `json:"BLOCKED_INSERT_OPERATIONS"`
	BlockedInsertRows            Number    `json:"BLOCKED_INSERT_ROWS"`
	UpdateOperations             Number    `json:"UPDATE_OPERATIONS"`
	DeleteOperations             Number    `json:"DELETE_OPERATIONS"`
	ClearOperations              Number    `json:"CLEAR_OPERATIONS"`
	CopyOperations               Number    `json:"COPY_OPERATIONS"`
	ReorganizeOperations         Number    `json:"REORGANIZE_OPERATIONS"`
	IndexBuilds                  Number    `json:"INDEX_BUILDS"`
	LogicalReads                 Number    `json:"LOGICAL_READS"`
	PhysicalReads                Number    `json:"PHYSICAL_READS"`
	SequentialReads              Number    `json:"SEQUENTIAL_READS"`
	RandomReads                  Number    `json:"RANDOM_READS"`
	NextIdentityValue            Number    `json:"NEXT_IDENTITY_VALUE"`
	KeepInMemory                 Text      `json:"KEEP_IN_MEMORY"`
	MediaPreference              Text      `json:"MEDIA_PREFERENCE"`
	Volatile                     Text      `json:"VOLATILE"`
	PartialTransaction           Text      `json:"PARTIAL_TRANSACTION"`
	ApplyStartingReceiverLibrary Text      `json:"APPLY_STARTING_RECEIVER_LIBRARY"`
	ApplyStartingReceiver        Text      `json:"APPLY_STARTING_RECEIVER"`
}

func (r *MemberRecord) fields() []interface{} {
	return []interface{}{
		&r.TableSchema,
		&r.TableName,
		&r.SystemTableSchema,
		&r.SystemTableName,
		&r.SystemTableMember,
		&r.SourceType,
		&r.LastSourceUpdateTimestamp,
		&r.TextDescription,
		&r.CreateTimestamp,
		&r.LastChangeTimestamp,
		&r.LastSaveTimestamp,
		&r.LastRestoreTimestamp,
		&r.LastUsedTimestamp,
		&r.DaysUsedCount,
		&r.LastResetTimestamp,
		&r.TablePartition,
		&r.PartitionType,
		&r.PartitionNumber,
		&r.NumberDistributedPartitions,
		&r.NumberPartitioningKeys,
		&r.PartitioningKeys,
		&r.LowInclusive,
		&r.LowValue,
		&r.HighInclusive,
		&r.HighValue,
		&r.NumberRows,
		&r.NumberPages,
		&r.Overflow,
		&r.AvgRowSize,
		&r.NumberDeletedRows,
		&r.DataSize,
		&r.VariableLengthSize,
		&r.VariableLengthSegments,
		&r.ColumnStatsSize,
		&r.MaintainedTemporaryIndexSize,
		&r.NumberDistinctIndexes,
		&r.OpenOperations,
		&r.CloseOperations,
		&r.InsertOperations,
		&r.BlockedInsertOperations,
		&r.BlockedInsertRows,
		&r.UpdateOperations,
		&r.DeleteOperations,
		&r.ClearOperations,
		&r.CopyOperations,
		&r.ReorganizeOperations,
		&r.IndexBuilds,
		&r.LogicalReads,
		&r.PhysicalReads,
		&r.SequentialReads,
		&r.RandomReads,
		&r.NextIdentityValue,
		&r.KeepInMemory,
		&r.MediaPreference,
		&r.Volatile,
		&r.PartialTransaction,
		&r.ApplyStartingReceiverLibrary,
		&r.ApplyStartingReceiver,
	}
}
