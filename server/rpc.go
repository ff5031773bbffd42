package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/viant/jsonrpc"
	"github.com/viant/staticmcp/internal/conv"
)

// decodeRequest reads a JSON-RPC request keeping numeric ids as written.
func decodeRequest(body io.Reader) (*jsonrpc.Request, error) {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()
	request := &jsonrpc.Request{}
	if err := decoder.Decode(request); err != nil {
		return nil, err
	}
	return request, nil
}

func parseErrorResponse(err error) *jsonrpc.Response {
	return &jsonrpc.Response{
		Jsonrpc: jsonrpc.Version,
		Error:   jsonrpc.NewParsingError(fmt.Sprintf("Parse error: %v", err), nil),
	}
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	data, err := conv.Marshal(value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
