package locator

import (
	"encoding/base64"
	"sort"
	"strings"

	"github.com/viant/staticmcp/internal/conv"
)

const (
	fileScheme     = "file://"
	schemeSep      = "://"
	jsonExt        = ".json"
	resourcesDir   = "resources/"
	toolsDir       = "tools/"
	queryPairSep   = "&"
	queryAssignSep = "="
)

// ResourcePath returns the relative path of the document backing a resource URI.
// URIs are not validated; anything unrecognised falls back to "<uri>.json".
func ResourcePath(URI string) string {
	if rest, ok := strings.CutPrefix(URI, fileScheme); ok {
		return resourcesDir + rest + jsonExt
	}
	if _, rest, ok := strings.Cut(URI, schemeSep); ok {
		if rest != "" {
			return resourcesDir + rest + jsonExt
		}
		return URI + jsonExt
	}
	if strings.HasSuffix(URI, jsonExt) {
		return URI
	}
	return URI + jsonExt
}

// ToolPath returns the relative path of the document holding the output of
// tool name called with arguments.
//
// With exactly two arguments the argument values (not keys) are sorted, so
// {a:1, b:2} and {x:2, y:1} share a path. Existing content trees are laid out
// that way and must keep resolving.
func ToolPath(name string, arguments map[string]any) string {
	dir := toolsDir + name
	switch len(arguments) {
	case 0:
		return dir + jsonExt
	case 1:
		for _, value := range arguments {
			return dir + "/" + conv.AsText(value) + jsonExt
		}
	case 2:
		values := make([]string, 0, 2)
		for _, value := range arguments {
			values = append(values, conv.AsText(value))
		}
		sort.Strings(values)
		return dir + "/" + values[0] + "/" + values[1] + jsonExt
	}
	return dir + "/" + Encode(Query(arguments)) + jsonExt
}

// Query builds the canonical key=value query string of arguments, ordered by key.
func Query(arguments map[string]any) string {
	keys := make([]string, 0, len(arguments))
	for key := range arguments {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+queryAssignSep+conv.AsText(arguments[key]))
	}
	return strings.Join(pairs, queryPairSep)
}

// Encode returns the path-safe standard Base64 form of query.
func Encode(query string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(query))
	return pathSafe.Replace(encoded)
}

var pathSafe = strings.NewReplacer("/", "_", "+", "_", "=", "_")
