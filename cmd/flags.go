package cmd

import (
	"github.com/spf13/pflag"
)

// bindFlag makes an explicitly set flag override the env value of key.
func bindFlag(flag *pflag.Flag, key string) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
