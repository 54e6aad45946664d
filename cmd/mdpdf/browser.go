package main

// defaultBrowserPath returns the conventional Chrome install location for
// a platform, or "" when none is known (the --browser parameter is then
// required). Takes the GOOS string so parameter resolution stays
// platform-agnostic and testable.
func defaultBrowserPath(goos string) string {
	switch goos {
	case "darwin":
		return "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"
	case "windows":
		return `C:\Program Files\Google\Chrome\Application\chrome.exe`
	case "linux":
		return "/usr/bin/google-chrome"
	default:
		return ""
	}
}
