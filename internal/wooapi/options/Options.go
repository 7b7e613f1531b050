package options

import (
	"strconv"
)

type OptionStruct struct {
	Key   string
	Value string
}

type Option func(*OptionStruct)

func Page(value int) Option {
	return func(f *OptionStruct) {
		f.Key = "page"
		f.Value = strconv.Itoa(value)
	}
}

func PerPage(value int) Option {
	return func(f *OptionStruct) {
		f.Key = "per_page"
		f.Value = strconv.Itoa(value)
	}
}

func Search(value string) Option {
	return func(f *OptionStruct) {
		f.Key = "search"
		f.Value = value
	}
}

func Order(value string) Option {
	return func(f *OptionStruct) {
		f.Key = "order"
		f.Value = value
	}
}

func OrderBy(value string) Option {
	return func(f *OptionStruct) {
		f.Key = "orderby"
		f.Value = value
	}
}
