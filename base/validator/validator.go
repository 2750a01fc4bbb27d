package validator

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// DefaultPrefix is the bech32 human readable part of cosmos hub accounts
const DefaultPrefix = "cosmos"

var addressPrefix = DefaultPrefix

// SetAddressPrefix changes the bech32 prefix addresses are checked against
func SetAddressPrefix(prefix string) {
	addressPrefix = prefix
}

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	return IsValidAddressWithPrefix(address, addressPrefix)
}

func IsValidAddressWithPrefix(address, prefix string) bool {
	// bech32 rejects mixed case, lower it like the chain does
	if strings.ToLower(address) != address && strings.ToUpper(address) != address {
		return false
	}
	hrp, data, err := bech32.Decode(address)
	if err != nil || hrp != prefix {
		return false
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return false
	}
	// 20 bytes for accounts, 32 for module and interchain accounts
	return len(payload) == 20 || len(payload) == 32
}

// IsValidTxHash accepts the 32 byte hex hash tendermint prints
func IsValidTxHash(hash string) bool {
	if len(hash) != 64 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	_ = v.RegisterValidation("bech32", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("txhash", func(fl validator.FieldLevel) bool {
		return IsValidTxHash(fl.Field().String())
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
