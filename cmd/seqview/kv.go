package main

import (
	"regexp"

	"github.com/boltdb/bolt"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqview/kv"
	"seqview/kv/boltsrc"
	"seqview/kv/pebblesrc"
	"seqview/views"
)

func newKVCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Views over an ordered key/value store",
	}
	cmd.PersistentFlags().String("pebble", "", "pebble database directory")
	cmd.PersistentFlags().String("bolt", "", "bolt database file")
	cmd.PersistentFlags().String("bucket", "", "bolt bucket")
	cmd.PersistentFlags().String("prefix", "", "only scan keys with this prefix")
	cmd.PersistentFlags().Bool("strict", false, "fail when the store runs out first")

	head := &cobra.Command{
		Use:   "head",
		Short: "Print the first entries of the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(src views.Source[kv.KV]) error {
				flags := a.viewFlags()
				v, err := views.Take(src, a.v.GetInt("count"), flags)
				if err != nil {
					return err
				}
				a.logger.Debug("kv head", zap.Stringer("kind", v.Kind()), zap.Stringer("caps", src.Caps()))
				return printView(cmd.OutOrStdout(), v, kv.KV.String)
			})
		},
	}
	head.Flags().IntP("count", "n", 10, "number of entries")
	head.Flags().Bool("exact", false, "report the count as the length")

	until := &cobra.Command{
		Use:   "until",
		Short: "Print entries up to the first key matching --match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			re, err := regexp.Compile(a.v.GetString("match"))
			if err != nil {
				return errors.Wrap(err, "compile --match")
			}
			return a.withStore(func(src views.Source[kv.KV]) error {
				stop := func(e kv.KV) bool { return re.Match(e.Key) }
				v, err := views.TakeUntil(src, stop, a.viewFlags()|views.Repeatable)
				if err != nil {
					return err
				}
				return printView(cmd.OutOrStdout(), v, kv.KV.String)
			})
		},
	}
	until.Flags().String("match", "", "regular expression on keys ending the view")

	cmd.AddCommand(head, until)
	return cmd
}

// withStore opens the store named by --pebble or --bolt, runs fn over it and
// closes everything it opened.
func (a *app) withStore(fn func(views.Source[kv.KV]) error) (err error) {
	src, closeStore, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() { err = errors.CombineErrors(err, closeStore()) }()
	return fn(src)
}

func (a *app) openStore() (views.Source[kv.KV], func() error, error) {
	var prefix []byte
	if p := a.v.GetString("prefix"); p != "" {
		prefix = []byte(p)
	}

	switch dir, file := a.v.GetString("pebble"), a.v.GetString("bolt"); {
	case dir != "" && file != "":
		return nil, nil, errors.New("--pebble and --bolt are exclusive")

	case dir != "":
		db, err := pebble.Open(dir, &pebble.Options{})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open pebble %s", dir)
		}
		src := pebblesrc.New(db, pebblesrc.Config{Prefix: prefix, Logger: a.logger.Named("pebble")})
		return src, func() error {
			return errors.CombineErrors(src.Close(), db.Close())
		}, nil

	case file != "":
		db, err := bolt.Open(file, 0600, &bolt.Options{ReadOnly: true})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open bolt %s", file)
		}
		src, err := boltsrc.Open(db, a.v.GetString("bucket"), boltsrc.Config{Prefix: prefix, Logger: a.logger.Named("bolt")})
		if err != nil {
			return nil, nil, errors.CombineErrors(err, db.Close())
		}
		return src, func() error {
			return errors.CombineErrors(src.Close(), db.Close())
		}, nil
	}
	return nil, nil, errors.New("one of --pebble or --bolt is required")
}
