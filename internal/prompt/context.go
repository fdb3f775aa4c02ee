package prompt

import (
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mikemackintosh/zush/internal/gitinfo"
	"github.com/mikemackintosh/zush/internal/modules"
)

// buildContext assembles the flat context map templates render against.
// Values the shell already passed in ContextJSON win over environment
// probing; git values win over ContextJSON when the directory is inside
// a repository, since the collector is fresher than the hook snapshot.
func (r *Renderer) buildContext(opts Options) map[string]any {
	ctx := make(map[string]any)

	if opts.ContextJSON != "" && gjson.Valid(opts.ContextJSON) {
		if values, ok := gjson.Parse(opts.ContextJSON).Value().(map[string]any); ok {
			for key, value := range values {
				ctx[key] = value
			}
		}
	}

	ctx["exit_code"] = opts.ExitCode

	ms := opts.ExecutionTime * 1000
	ctx["execution_time"] = ms
	ctx["execution_time_ms"] = int64(ms)
	ctx["execution_time_s"] = opts.ExecutionTime

	if _, ok := ctx["time"]; !ok {
		ctx["time"] = time.Now().Format("15:04:05")
	}
	if _, ok := ctx["user"]; !ok {
		if user, set := os.LookupEnv("USER"); set {
			ctx["user"] = user
		}
	}
	if _, ok := ctx["host"]; !ok {
		ctx["host"] = hostValue()
	}
	if _, ok := ctx["pwd"]; !ok {
		if pwd, found := workingDir(); found {
			ctx["pwd"] = pwd
			ctx["pwd_short"] = shortenPath(pwd)
		}
	}
	if _, ok := ctx["pwd_short"]; !ok {
		if pwd, isString := ctx["pwd"].(string); isString {
			ctx["pwd_short"] = shortenPath(pwd)
		}
	}

	ctx["is_ssh"] = envPresent("SSH_CONNECTION") || envPresent("SSH_TTY")

	if _, ok := ctx["jobs"]; !ok {
		ctx["jobs"] = 0
	}

	if pwd, isString := ctx["pwd"].(string); isString && r.Git != nil {
		if status, inRepo := r.Git.Status(pwd); inRepo {
			for key, value := range status.ContextValues() {
				ctx[key] = value
			}
		}
	}
	// Every git key exists even outside a repository, so templates can
	// reference them unguarded.
	var noRepo *gitinfo.Status
	for key, value := range noRepo.ContextValues() {
		if _, ok := ctx[key]; !ok {
			ctx[key] = value
		}
	}

	if r.Modules != nil {
		if moduleCtx, err := modules.NewContext(); err == nil {
			outputs := r.Modules.RenderAll(moduleCtx)
			if values := modules.ContextValues(outputs); len(values) > 0 {
				ctx["modules"] = values
			}
		}
	}

	return ctx
}

// hostValue prefers the shell's HOST, then HOSTNAME, then the kernel.
func hostValue() string {
	if host, ok := os.LookupEnv("HOST"); ok {
		return host
	}
	if host, ok := os.LookupEnv("HOSTNAME"); ok {
		return host
	}
	if host, err := os.Hostname(); err == nil {
		return host
	}
	return "localhost"
}

// workingDir prefers $PWD over the process working directory; $PWD
// preserves the logical path the user typed, symlinks intact.
func workingDir() (string, bool) {
	if pwd, ok := os.LookupEnv("PWD"); ok {
		return pwd, true
	}
	if pwd, err := os.Getwd(); err == nil {
		return pwd, true
	}
	return "", false
}

// shortenPath abbreviates the home directory to ~. Paths the shell
// already shortened pass through unchanged.
func shortenPath(pwd string) string {
	if strings.HasPrefix(pwd, "~") {
		return pwd
	}
	home, ok := os.LookupEnv("HOME")
	if !ok || home == "" {
		return pwd
	}
	return strings.ReplaceAll(pwd, home, "~")
}

func envPresent(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// contextInt reads a numeric context value that may have arrived as a
// JSON float, a Go int, or an int64.
func contextInt(ctx map[string]any, key string, fallback int) int {
	switch v := ctx[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}
