package nodejs

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/rios0rios0/depdoctor/internal/domain/entities"
)

const installTreeSegment = entities.InstallTreeDir + "/"

// parseParseableList reads "ls --parseable" output, one absolute path per
// line, and keeps the part after the last node_modules/ segment. Lines outside
// the install tree (the project root itself, warnings) are dropped.
func parseParseableList(output []byte) entities.NameSet {
	installed := make(entities.NameSet)
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.ReplaceAll(strings.TrimSpace(scanner.Text()), `\`, "/")
		idx := strings.LastIndex(line, installTreeSegment)
		if idx < 0 {
			continue
		}
		name := strings.TrimSuffix(line[idx+len(installTreeSegment):], "/")
		if name == "" || strings.HasPrefix(name, ".") {
			continue
		}
		installed.Add(name)
	}
	return installed
}

// parseTreeList reads "yarn list --depth=0" output. Only top-level tree lines
// ("├─ name@version" or "└─ name@version") name a package; the header,
// warnings and the trailing "Done in" line are dropped.
func parseTreeList(output []byte) entities.NameSet {
	installed := make(entities.NameSet)
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \r")
		if !strings.HasPrefix(line, "├─") && !strings.HasPrefix(line, "└─") {
			continue
		}
		spec := strings.TrimSpace(strings.TrimLeft(line, "├└─ "))
		installed.Add(stripVersion(spec))
	}
	return installed
}

// stripVersion turns "name@1.2.3" or "@scope/name@1.2.3" into the bare name.
func stripVersion(spec string) string {
	at := strings.LastIndex(spec, "@")
	if at <= 0 {
		return spec
	}
	return spec[:at]
}
