package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Valores padrão (sobrescritos por ldflags ou por build info)
var Version = "0.0.0-dev"
var Commit = ""
var BuildTime = ""

// buildSetting procura uma chave nas configurações de build.
func buildSetting(bi *debug.BuildInfo, key string) string {
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// populateFromBuildInfo preenche Commit/BuildTime/Version a partir do build info do Go
// quando os ldflags não definiram esses valores.
func populateFromBuildInfo(bi *debug.BuildInfo) {
	if bi == nil {
		return
	}

	if Commit == "" {
		if rev := buildSetting(bi, "vcs.revision"); len(rev) >= 7 {
			Commit = rev[:7]
		}
	}

	if BuildTime == "" {
		if ts, err := time.Parse(time.RFC3339, buildSetting(bi, "vcs.time")); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	// Versão do módulo quando instalado via "go install ...@vX.Y.Z"
	if Version == "" || Version == "0.0.0-dev" {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			Version = strings.TrimPrefix(v, "v")
			if strings.EqualFold(buildSetting(bi, "vcs.modified"), "true") {
				Version += "-dirty"
			}
		}
	}
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if ok {
		populateFromBuildInfo(bi)
	}
}

// FormatVersion retorna a versão formatada com commit e build time.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = "0.0.0-dev"
	}

	if Commit == "" && BuildTime == "" {
		return fmt.Sprintf("%s (development)", ver)
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}

	if BuildTime != "" {
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
	}

	return fmt.Sprintf("%s (commit: %s)", ver, commit)
}
