package identity

import (
	"context"

	"github.com/starterkit-dev/typescript-starter/internal/process"
)

// User is the git author stamped on the generated project.
type User struct {
	GitName  string
	GitEmail string
}

// UserInfo reads user.name and user.email from git config. Each value falls
// back to its placeholder on its own; the function never fails.
func UserInfo(ctx context.Context, runner process.Runner) User {
	return User{
		GitName:  gitConfig(ctx, runner, "user.name").Or(PlaceholderName),
		GitEmail: gitConfig(ctx, runner, "user.email").Or(PlaceholderEmail),
	}
}

func gitConfig(ctx context.Context, runner process.Runner, key string) Lookup {
	res, err := runner.Run(ctx, "git", []string{"config", key}, process.Options{})
	if err != nil || res == nil {
		return Placeholder()
	}
	return Found(res.Stdout)
}
