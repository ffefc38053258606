package dummyserial

import (
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// Responses is a request to response table. Its Lookup method satisfies the
// Lookup type, so a table plugs straight into a port:
//
//	Open(&Config{Lookup: Responses{"AT\r\n": "OK\r\n"}.Lookup})
type Responses map[string]string

// Lookup answers a request from the table, and misses with the when-invalid
// marker.
func (r Responses) Lookup(request, whenInvalid string) interface{} {
	if response, ok := r[request]; ok {
		return response
	}
	Log.Debugf("no response for %q", request)
	return whenInvalid
}

// Tables can be kept in YAML fixture files, a flat mapping of request to
// response:
//
//	"AT\r\n": "OK\r\n"
//	"ATI\r\n": "dummy modem\r\nOK\r\n"

// LoadResponses reads a response table from a YAML file.
func LoadResponses(path string) (Responses, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadResponses(file)
}

// ReadResponses reads a response table from a reader.
func ReadResponses(r io.Reader) (Responses, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseResponses(data)
}

// ParseResponses reads a response table from []byte.
func ParseResponses(data []byte) (Responses, error) {
	responses := Responses{}
	err := yaml.Unmarshal(data, &responses)
	if err != nil {
		return nil, err
	}
	return responses, nil
}
