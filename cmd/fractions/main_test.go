package main

import (
	"reflect"
	"testing"

	"github.com/docopt/docopt-go"
)

func TestExprArgv(t *testing.T) {
	cases := []struct {
		argv []string
		want []string
	}{
		{nil, nil},
		{[]string{"-h"}, []string{"-h"}},
		{[]string{"--help"}, []string{"--help"}},
		{[]string{"--", "-39", "-", "1/2"}, []string{"--", "-39", "-", "1/2"}},
		{[]string{"9", "+", "2"}, []string{"--", "9", "+", "2"}},
		{[]string{"-39", "-", "19_12/49"}, []string{"--", "-39", "-", "19_12/49"}},
	}
	for _, c := range cases {
		if got := exprArgv(c.argv); !reflect.DeepEqual(got, c.want) {
			t.Errorf("rewriting %q: want %q, got %q", c.argv, c.want, got)
		}
	}
}

func TestUsageAcceptsLeadingNegative(t *testing.T) {
	cases := [][]string{
		{"9", "+", "2"},
		{"-39", "-", "19_12/49", "/", "35/42", "+", "-41/40", "*", "53"},
		{"-2_1/2", "+", "27/2"},
	}
	for _, argv := range cases {
		opts, err := docopt.ParseArgs(usage, exprArgv(argv), "")
		if err != nil {
			t.Errorf("parsing %q: unexpected error %v", argv, err)
			continue
		}
		got, _ := opts["EXPRESSION"].([]string)
		if !reflect.DeepEqual(got, argv) {
			t.Errorf("parsing %q: expression came back as %q", argv, got)
		}
	}
}
