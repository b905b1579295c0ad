package constants

const (
	AppName           = "habitlog"
	DefaultConfigPath = "~/.config/habitlog/habitlog.db"
	Version           = "v0.2.0"

	// DateFormat is the canonical stored date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DayFirstDateFormat is the alternate accepted input format (DD-MM-YYYY)
	DayFirstDateFormat = "02-01-2006"

	// TodayKeyword resolves to the current date when entered as a date
	TodayKeyword = "today"

	// Table and column names
	HabitTable        = "habit"
	ColumnID          = "id_habit"
	ColumnName        = "name"
	ColumnMeasurement = "measurement"
	ColumnQuantity    = "quantity"
	ColumnDate        = "habit_date"

	// Seed constants
	SeedCount       = 100
	SeedMinQuantity = 1.0
	SeedMaxQuantity = 11.0
	SeedMaxDaysBack = 365

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitlog-"
	BackupFileSuffix = ".db"
	LogDirName       = "logs"
	LogFileName      = "habitlog.log"
)
