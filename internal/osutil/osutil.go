package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

const DirPermission = 0o755

// DefaultEditor returns the editor used when neither $VISUAL nor $EDITOR is
// set.
func DefaultEditor(goos string) string {
	if goos == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
