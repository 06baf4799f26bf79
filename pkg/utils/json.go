package utils

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		buffer = raw
	} else {
		buffer, err = json.Marshal(in)
		if err != nil {
			return fmt.Sprint(in)
		}
	}

	var out bytes.Buffer
	if err = jsonIndent(&out, buffer); err != nil {
		return string(buffer)
	}

	return out.String()
}

func jsonIndent(out *bytes.Buffer, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	indented, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out.Write(indented)
	return nil
}
