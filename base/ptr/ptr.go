package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// Int return a pointer to the input value
func Int(value int) *int {
	return &value
}

// Int64 return a pointer to the input value
func Int64(value int64) *int64 {
	return &value
}

// Bool return a pointer to the input value
func Bool(value bool) *bool {
	return &value
}

// Int64Value dereferences p, nil reads as zero
func Int64Value(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// StringValue dereferences p, nil reads as empty
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
