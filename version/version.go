// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Info describes a build of the running binary.
type Info struct {
	Name      string // command name
	Module    string // main module version, or "devel"
	Commit    string // VCS revision, if known
	Modified  bool   // whether the working tree had local changes
	GoVersion string
}

// String returns a human-readable description of the build, terminated by a
// newline.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Module)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s", i.Commit)
		if i.Modified {
			sb.WriteString(", modified")
		}
		sb.WriteByte(')')
	}
	fmt.Fprintf(&sb, " built with %s\n", i.GoVersion)
	return sb.String()
}

var info = sync.OnceValue(func() Info {
	i := Info{
		Name:      CmdName(),
		Module:    "devel",
		GoVersion: runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Module = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Modified = s.Value == "true"
		}
	}
	return i
})

// Version returns build information of the running binary.
func Version() Info { return info() }

// CmdName returns the base name of the running executable.
func CmdName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, ".exe")
}
