package version

var (
	// Git SHA Value will be set during build, -ldflags "-X .../pkg/version.GitTagSha=..."
	GitTagSha = "Git tag sha: Not provided, use Makefile to build"
)

func GetVersion() string {
	return GitTagSha
}
