package starter

import (
	"github.com/starterkit-dev/typescript-starter/internal/branding"
	"github.com/starterkit-dev/typescript-starter/internal/updater"
)

// OverrideBranch is cloned when the repo URL is overridden without a branch,
// and for development builds that have no release tag.
const OverrideBranch = "master"

// LookupEnv reads one environment variable. os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

// MapEnv adapts a map to LookupEnv.
func MapEnv(m map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func (env LookupEnv) get(key string) string {
	if env == nil {
		return ""
	}
	v, _ := env(key)
	return v
}

// Environment variable names read by RepoInfoFor.
var (
	EnvRepoURL    = branding.EnvVar("REPO_URL")
	EnvRepoBranch = branding.EnvVar("REPO_BRANCH")
)

// RepoInfoFor picks the template to clone. An overridden URL clones
// OverrideBranch unless the branch is overridden too; otherwise the canonical
// template is cloned at the tag matching the running version.
func RepoInfoFor(version string, env LookupEnv) RepoInfo {
	if url := env.get(EnvRepoURL); url != "" {
		branch := OverrideBranch
		if b := env.get(EnvRepoBranch); b != "" {
			branch = b
		}
		return RepoInfo{Repo: url, Branch: branch}
	}

	branch := updater.BranchFor(version)
	if updater.IsDev(version) {
		branch = OverrideBranch
	}
	return RepoInfo{Repo: branding.TemplateRepoURL(), Branch: branch}
}
