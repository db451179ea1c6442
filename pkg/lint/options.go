package lint

// GetIntOption extracts an int option, accepting the numeric forms YAML
// and JSON decoders produce.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return defaultVal
	}
}

// GetFloatOption extracts a float option.
func GetFloatOption(opts map[string]any, key string, defaultVal float64) float64 {
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return defaultVal
	}
}
