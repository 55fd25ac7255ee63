package main

import (
	"fmt"

	"go.scnd.dev/open/syrup/grass/lib/common/config"
	"go.scnd.dev/open/syrup/grass/lib/service/grass"
	"go.scnd.dev/open/syrup/grass/lib/service/stemtable"
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

func OutputPath(config *config.Config, grass grass.Server, l int) string {
	if config.Output != nil && *config.Output != "" {
		return *config.Output
	}

	p := grass.Parameters()
	return stemtable.OutputName(l, p.Alpha, p.Delta)
}

func PrintStat(stat *tuple.Stat) {
	fmt.Printf("+ prefix classes created (%d, l=%d)\n", stat.PrefixClasses, stat.PrefixLength)
	fmt.Printf("+ suffix pairs counted (%d signatures, %d frequent)\n", stat.Signatures, stat.FrequentSignatures)
	fmt.Printf("+ graph built (%d vertices, %d edges)\n", stat.Vertices, stat.Edges)
	fmt.Printf("+ stem classes partitioned (%d)\n", stat.StemClasses)
}
