package config

import (
	"os"
	"path/filepath"
)

// localAppData returns the local app data directory.
func localAppData() string {
	return os.Getenv("LOCALAPPDATA")
}

// appData returns the roaming app data directory.
func appData() string {
	return os.Getenv("APPDATA")
}

// tempDir returns the per-user temp directory (%TEMP% / %TMP%).
func tempDir() string {
	return os.TempDir()
}

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// programData returns the ProgramData directory (e.g., C:\ProgramData).
// Falls back to C:\ProgramData only if %PROGRAMDATA% is not set.
func programData() string {
	if p := os.Getenv("PROGRAMDATA"); p != "" {
		return p
	}
	return `C:\ProgramData`
}

// systemDrive returns the system drive letter with backslash (e.g., C:\).
// Falls back to C:\ only if %SYSTEMDRIVE% is not set.
func systemDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return d + `\`
	}
	return `C:\`
}

// programFiles returns the Program Files directory.
func programFiles() string {
	if p := os.Getenv("PROGRAMFILES"); p != "" {
		return p
	}
	return `C:\Program Files`
}

// programFilesX86 returns the Program Files (x86) directory.
func programFilesX86() string {
	if p := os.Getenv("PROGRAMFILES(X86)"); p != "" {
		return p
	}
	return `C:\Program Files (x86)`
}

// SystemDrive exposes the system drive root for free-space reporting.
func SystemDrive() string {
	return systemDrive()
}

// DefaultLogDir returns the directory for the rotating diagnostic log.
func DefaultLogDir() string {
	return filepath.Join(localAppData(), "winsweep", "logs")
}

// NeverDeletePaths returns path prefixes that must never contribute
// deletion candidates, even when a wildcard pattern overreaches into
// them. The list uses environment variables to support Windows
// installations on any drive letter (not just C:).
func NeverDeletePaths() []string {
	w := winDir()
	sd := systemDrive()
	return []string{
		filepath.Join(w, "System32"),
		filepath.Join(w, "SysWOW64"),
		filepath.Join(w, "WinSxS"),
		filepath.Join(w, "assembly"),
		filepath.Join(w, "Installer"),
		filepath.Join(w, "servicing"),
		filepath.Join(w, "Prefetch"),
		filepath.Join(sd, "Boot"),
		filepath.Join(sd, "EFI"),
		filepath.Join(sd, "Recovery"),
		programFiles(),
		programFilesX86(),
	}
}
