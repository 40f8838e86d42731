package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sweeper/pkg/domain/model"
	"github.com/m-mizutani/sweeper/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Target holds the descriptor of the release to keep
type Target struct {
	Name  string
	Tag   string
	Match string
}

// Flags returns CLI flags for target configuration
func (c *Target) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "keep-name",
			Usage:       "Name of the release to keep",
			Destination: &c.Name,
			Sources:     cli.EnvVars("SWEEPER_KEEP_NAME"),
		},
		&cli.StringFlag{
			Name:        "keep-tag",
			Usage:       "Tag of the release to keep",
			Destination: &c.Tag,
			Sources:     cli.EnvVars("SWEEPER_KEEP_TAG"),
		},
		&cli.StringFlag{
			Name:        "match",
			Usage:       "Target match mode: 'any' keeps a release when name or tag matches, 'all' requires both (default: any)",
			Destination: &c.Match,
			Sources:     cli.EnvVars("SWEEPER_MATCH"),
		},
	}
}

// Configure validates the descriptor and converts it to the domain type.
// An empty name or tag would make the match rule meaningless, so both are
// rejected here, before any remote call.
func (c *Target) Configure() (model.Target, error) {
	if c.Name == "" || c.Tag == "" {
		return model.Target{}, goerr.New("target release name and tag are required",
			goerr.T(types.ErrTagConfig),
			goerr.V("keep_name", c.Name),
			goerr.V("keep_tag", c.Tag),
		)
	}

	mode := model.MatchMode(c.Match)
	switch mode {
	case model.MatchAny, model.MatchAll:
	case "":
		mode = model.MatchAny
	default:
		return model.Target{}, goerr.New("invalid match mode",
			goerr.T(types.ErrTagConfig),
			goerr.V("match", c.Match),
		)
	}

	return model.Target{
		Name: c.Name,
		Tag:  c.Tag,
		Mode: mode,
	}, nil
}
