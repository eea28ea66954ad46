package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

var (
	sequence string
	target   string
)

func init() {
	flag.StringVar(&sequence, "sequence", "", "JSON array of numbers or strings to merge sort, for example '[10,5,2]'")
	flag.StringVar(&target, "target", "", "JSON number or string to binary search in the sorted sequence")
}

func main() {
	flag.Parse()
	_ = flag.Set("logtostderr", "true")

	if err := run(os.Stdout, sequence, target); err != nil {
		glog.Errorf("failed with error: %+v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
