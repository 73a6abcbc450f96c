package project

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
)

// Load decodes a resolved workspace snapshot. A non-nil data slice takes
// precedence; with nil data the snapshot is read from the named file.
//
// The snapshot carries already-resolved objects; no inheritance or
// filtering happens here. After decoding, back-references from projects
// and configurations to their owners are fixed up, and the workspace
// configuration list is derived from the first project when absent.
// Toolchains are not part of the snapshot: the caller attaches them.
func Load(file string, data []byte) (*Workspace, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewBuffer(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		reader = f
	}

	var wks Workspace

	if err := json.NewDecoder(reader).Decode(&wks); err != nil {
		return nil, err
	}

	for _, prj := range wks.Projects {
		prj.Workspace = &wks
		for _, cfg := range prj.Configs {
			cfg.Project = prj
		}
	}
	if len(wks.Configurations) == 0 && len(wks.Projects) > 0 {
		for _, cfg := range wks.Projects[0].Configs {
			wks.Configurations = append(wks.Configurations, cfg.Name)
		}
	}

	return &wks, nil
}
