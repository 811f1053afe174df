package version

// Build metadata, overridable via -ldflags at release time.
var (
	AppName   = "Frostward"
	AppDesc   = "Community management bot for Whiteout Survival servers"
	Version   = "dev"
	BuildDate = "unknown"
)
