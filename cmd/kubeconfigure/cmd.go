package main

import (
	"flag"
	"io"

	klog "k8s.io/klog/v2"
)

// quietKlog silences klog output from client-go so that command output and
// prompts stay readable. Errors surface through returned errors instead.
func quietKlog() {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("logtostderr", "false")
	_ = fs.Set("alsologtostderr", "false")
	_ = fs.Set("stderrthreshold", "FATAL")
	_ = fs.Set("v", "0")
	klog.SetOutput(io.Discard)
}
