package config

func stringPtr(s string) *string        { return &s }
func intPtr(n int) *int                 { return &n }
func strSlicePtr(ss []string) *[]string { return &ss }

// StringPtr returns a pointer to s, for building overrides outside this package.
func StringPtr(s string) *string { return stringPtr(s) }

// IntPtr returns a pointer to n, for building overrides outside this package.
func IntPtr(n int) *int { return intPtr(n) }

// StringSlicePtr returns a pointer to ss, for building overrides outside this package.
func StringSlicePtr(ss []string) *[]string { return strSlicePtr(ss) }
