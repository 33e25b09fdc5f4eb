//go:generate mockgen -source=$GOFILE -destination=settings_mock.go -package=$GOPACKAGE

package ports

// LinkerSettingsPort reads the raw OTHER_LDFLAGS value for a target's
// settings file.  found is false when the file has no such line.
type LinkerSettingsPort interface {
	ReadLinkerFlags(settingsPath string) (value string, found bool, err error)
}
