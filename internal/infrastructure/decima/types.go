package decima

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// El ERP no es consistente con los tipos: los booleanos llegan como
// 0/1, true/false o "1" según el endpoint, y los enteros a veces vienen
// como string. Estos tipos absorben esas variantes al decodificar.

// flexBool booleano tolerante.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "false", "0", `"0"`, `""`:
		*b = false
		return nil
	case "true", "1", `"1"`:
		*b = true
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*b = n != 0
		return nil
	}
	*b = false
	return nil
}

// flexInt64 entero tolerante (número o string).
type flexInt64 int64

func (i *flexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*i = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*i = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*i = flexInt64(n)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	v, err := n.Int64()
	if err != nil {
		// Algunos ids llegan como 7.0
		f, fErr := n.Float64()
		if fErr != nil {
			return err
		}
		v = int64(f)
	}
	*i = flexInt64(v)
	return nil
}
