package config

import (
	"reflect"

	"github.com/jmylchreest/icv/internal/icv"
)

// modeHook normalises mode names (including aliases) while decoding.
func modeHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(icv.Mode("")) {
		return data, nil
	}
	return icv.ParseMode(data.(string))
}
