package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa o valor com indentação. Um []byte é tratado como JSON já codificado.
func PrettyJson(in any) (string, error) {
	raw, ok := in.([]byte)
	if !ok {
		return marshalIndent(in)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", err
	}
	return marshalIndent(decoded)
}

func marshalIndent(in any) (string, error) {
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
