package output

// ConsoleFormatter prints the bare output value on its own line.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result Result) ([]byte, error) {
	return []byte(result.Output + "\n"), nil
}
