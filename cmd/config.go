package cmd

// Config carries everything the process needs from the environment: the
// directory service's own HTTP and database settings, plus the console-side
// settings used when a headless console session runs alongside it.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DirectoryURL  string
	SessionURL    string
	ConsoleUserID string
	ConsoleRole   string
	BoardPageSize int
}
