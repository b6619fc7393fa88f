// Package osutil holds platform constants shared by the commands
package osutil

import "runtime"

const Windows = "windows"

const ExitError = 1

const FilePermission = 0o600

// DefaultEditor is the editor used when neither VISUAL nor EDITOR is set.
func DefaultEditor() string {
	if runtime.GOOS == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
