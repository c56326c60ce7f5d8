// Package config loads textcore settings from TOML or JSON files with
// environment variable overrides.
//
// Settings cover the indentation alignment unit and the autoclose
// delimiter pairs. Loading never fails on a missing file; defaults are
// returned so a bare installation works without any configuration.
//
//	cfg, err := config.LoadTOML(path)
//	if err != nil {
//	    return err
//	}
//	cfg = config.FromEnv(cfg)
//
//	buf := textbuf.New(cfg.Options()...)
//	buf, err = buf.Insert(pos, "(", cfg.AutocloseMap())
package config
