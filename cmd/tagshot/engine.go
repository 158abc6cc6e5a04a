package main

import (
	"fmt"

	"github.com/user/tagshot/pkg/adapters/chromecapture"
	"github.com/user/tagshot/pkg/adapters/pwcapture"
	"github.com/user/tagshot/pkg/adapters/rodcapture"
	"github.com/user/tagshot/pkg/config"
	"github.com/user/tagshot/pkg/ports"
)

// newRasterizer is a variable so tests can run export without a browser.
var newRasterizer = func(engine string, fs ports.FileSystem, opts ports.BrowserOptions, logger ports.Logger) (ports.Rasterizer, error) {
	switch engine {
	case config.EngineChromedp, "":
		return chromecapture.New(fs, opts, logger), nil
	case config.EngineRod:
		return rodcapture.New(opts, logger), nil
	case config.EnginePlaywright:
		return pwcapture.New(opts, logger), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}
