// rigcheck validates a rig document without starting the simulator.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/roomscale/rig"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: rigcheck [rig.yaml]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var (
		spec *rig.Spec
		err  error
		name = flag.Arg(0)
	)
	if name == "" {
		name = rig.DefaultRig
		spec, err = rig.LoadSpec(name)
	} else {
		var data []byte
		data, err = os.ReadFile(name)
		if err == nil {
			spec, err = rig.ParseSpec(data)
		}
	}
	if err != nil {
		log.Fatalf("rigcheck: %v", err)
	}

	if err := spec.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: invalid rig:\n%v\n", name, err)
		os.Exit(1)
	}

	cameras, controllers, recenters := 0, 0, 0
	for _, e := range spec.Entities {
		if e.Camera != nil {
			cameras++
		}
		if e.Controller != nil {
			controllers++
		}
		if e.Recenter != nil {
			recenters++
		}
	}
	fmt.Printf("%s: ok (%d entities, %d cameras, %d controllers, %d recenter behaviors)\n",
		name, len(spec.Entities), cameras, controllers, recenters)
}
