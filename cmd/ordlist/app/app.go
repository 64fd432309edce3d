package app

import (
	"errors"
	"fmt"

	"Ordo/cmd/ordlist/app/options"
	"Ordo/pkg/ordlist"
	"Ordo/pkg/util/app"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"k8s.io/klog/v2"
)

const commandDesc = `build an ordered list from the given keys, walk it front to back and run optional membership probes`

func New(basename string) *app.App {
	opts := options.New()
	conf := &options.Config{}
	application := app.NewApp(
		basename,
		app.WithOptions(opts),
		app.WithConfiguration(conf),
		app.WithDescription(commandDesc),
		app.WithRunFunc(run(opts, conf)),
	)
	return application
}

func compareInt(k1, k2 int) int {
	if k1 < k2 {
		return -1
	}
	if k2 < k1 {
		return 1
	}
	return 0
}

func run(opts *options.Options, conf *options.Config) app.RunFunc {
	return func(basename string) error {
		conf.ApplyTo(opts)
		list := ordlist.New(compareInt)

		for _, k := range opts.Keys() {
			if err := list.Insert(k); err != nil {
				if errors.Is(err, ordlist.ErrKeyExists) {
					klog.Warningf("skip duplicate key %d", k)
					continue
				}
				return err
			}
		}
		klog.Infof("inserted %d keys", len(opts.Keys()))

		table := uitable.New()
		table.AddRow("#", "KEY")
		n := 0
		it := list.Iterator()
		for it.SeekToFirst(); it.Valid(); it.Next() {
			table.AddRow(n, it.Key())
			n++
		}
		fmt.Println(table)

		if opts.Reverse() {
			fmt.Println("back to front:")
			for it.SeekToLast(); it.Valid(); it.Prev() {
				fmt.Println(it.Key())
			}
		}

		for _, p := range opts.Probes() {
			if list.Contains(p) {
				fmt.Printf("%v %d\n", color.GreenString("found:"), p)
			} else {
				fmt.Printf("%v %d\n", color.RedString("missing:"), p)
			}
		}
		return nil
	}
}
