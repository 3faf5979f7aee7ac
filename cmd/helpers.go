package cmd

import (
	"github.com/llehouerou/folio/internal/config"
	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/errmsg"
	"github.com/llehouerou/folio/internal/icons"
)

// loadPortfolio reads the configuration and the content it points to. The
// --content flag overrides the configured path.
func loadPortfolio() (*config.Config, *content.Portfolio, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, errmsg.Wrap(errmsg.OpConfigLoad, err)
	}
	icons.Init(cfg.Icons)

	path := cfg.Content
	if contentFile != "" {
		path = contentFile
	}
	p, err := content.Load(path)
	if err != nil {
		return nil, nil, errmsg.Wrap(errmsg.OpContentLoad, err)
	}
	if err := p.Validate(); err != nil {
		return nil, nil, errmsg.Wrap(errmsg.OpContentValidate, err)
	}
	return cfg, p, nil
}
