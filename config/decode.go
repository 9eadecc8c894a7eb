package config

import (
	"encoding"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"lukechampine.com/uint128"

	"github.com/social-network/DAO/arith"
)

var (
	uint128Type         = reflect.TypeOf(uint128.Uint128{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Uint128DecodeFunc decodes strings and numbers into uint128.Uint128.
func Uint128DecodeFunc() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data any) (any, error) {
		if t != uint128Type {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return arith.ParseUint128(v)
		case int:
			return signedToUint128(int64(v))
		case int32:
			return signedToUint128(int64(v))
		case int64:
			return signedToUint128(v)
		case uint:
			return uint128.From64(uint64(v)), nil
		case uint32:
			return uint128.From64(uint64(v)), nil
		case uint64:
			return uint128.From64(v), nil
		case float64:
			if v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %v", arith.ErrAmountRange, v)
			}
			i, _ := new(big.Float).SetFloat64(v).Int(nil)
			return arith.ParseUint128(i.String())
		}
		return data, nil
	}
}

func signedToUint128(v int64) (uint128.Uint128, error) {
	if v < 0 {
		return uint128.Zero, fmt.Errorf("%w: %d", arith.ErrAmountRange, v)
	}
	return uint128.From64(uint64(v)), nil
}

// NumberToTextHookFunc renders numbers as text when the target decodes itself from
// text, so that fractions such as 0.99995 are parsed exactly instead of truncated.
func NumberToTextHookFunc() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data any) (any, error) {
		if !reflect.PointerTo(t).Implements(textUnmarshalerType) {
			return data, nil
		}
		switch v := data.(type) {
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case float32:
			return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
		case int:
			return strconv.Itoa(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		case uint64:
			return strconv.FormatUint(v, 10), nil
		}
		return data, nil
	}
}

// DecodeHook is the hook used to unmarshal viper values into Config.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		Uint128DecodeFunc(),
		NumberToTextHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// WithZeroFields replaces slices and maps instead of merging into the defaults.
func WithZeroFields() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ZeroFields = true
	}
}

// Decode unmarshals the values held by vip over conf and validates the schedule.
func Decode(vip *viper.Viper, conf *Config) error {
	if err := vip.Unmarshal(conf, viper.DecodeHook(DecodeHook()), WithZeroFields()); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := conf.Inflation.Schedule(); err != nil {
		return fmt.Errorf("inflation schedule: %w", err)
	}
	return nil
}
