package cli

// Options defines command line flags. Flags override values loaded from the
// config file.
type Options struct {
	ConfigURL       string `short:"c" long:"config" description:"YAML config file path or URL"`
	Mode            string `short:"m" long:"mode" description:"bridge mode" choice:"fixed" choice:"dynamic"`
	Transport       string `short:"t" long:"transport" description:"fixed mode transport" choice:"http" choice:"stdio"`
	Address         string `short:"a" long:"address" description:"listen address"`
	LogLevel        string `short:"l" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	FetchTimeoutSec int    `long:"fetch-timeout" description:"remote document fetch timeout in seconds"`
	Name            string `long:"name" description:"server name reported by initialize"`
	Version         string `long:"server-version" description:"server version reported by initialize"`
	ProtocolVersion string `short:"p" long:"protocol" description:"mcp protocol version reported by initialize"`
	Args            struct {
		Values []string `positional-arg-name:"SOURCE [PORT]"`
	} `positional-args:"yes"`
}
