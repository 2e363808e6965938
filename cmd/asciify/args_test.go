package main

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("normalizeArgs", func() {
	flags := newApp(nil).Flags

	DescribeTable("rewrites",
		func(in, expected []string) {
			Expect(normalizeArgs(append([]string{"asciify"}, in...), flags)).To(Equal(append([]string{"asciify"}, expected...)))
		},
		Entry("positionals only",
			[]string{"a.png", "40"},
			[]string{"--", "a.png", "40"}),
		Entry("trailing flags",
			[]string{"a.png", "40", "-i", "--shade"},
			[]string{"-i", "--shade", "--", "a.png", "40"}),
		Entry("flag values stay with their flag",
			[]string{"a.png", "--custom", " .#", "40"},
			[]string{"--custom", " .#", "--", "a.png", "40"}),
		Entry("negative flag values",
			[]string{"--brightness", "-20", "a.png", "40"},
			[]string{"--brightness", "-20", "--", "a.png", "40"}),
		Entry("bare save at the end",
			[]string{"a.png", "40", "-s"},
			[]string{"--save=", "--", "a.png", "40"}),
		Entry("bare save before another flag",
			[]string{"--save", "--dots", "a.png", "40"},
			[]string{"--save=", "--dots", "--", "a.png", "40"}),
		Entry("save with a path",
			[]string{"a.png", "40", "--save", "out.txt"},
			[]string{"--save", "out.txt", "--", "a.png", "40"}),
		Entry("save with an inline path",
			[]string{"--save=out.txt", "a.png", "40"},
			[]string{"--save=out.txt", "--", "a.png", "40"}),
		Entry("negative width is positional",
			[]string{"a.png", "-5"},
			[]string{"--", "a.png", "-5"}),
		Entry("explicit separator",
			[]string{"-i", "--", "-odd.png", "40"},
			[]string{"-i", "--", "-odd.png", "40"}),
	)
})
