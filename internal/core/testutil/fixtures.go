package testutil

import "github.com/AntonioJCosta/pdg/internal/core/domain/action"

// SampleTable is a small action table covering every kind, for service tests.
func SampleTable() action.Table {
	return action.Table{
		DefaultMessage: "Update",
		PublishModes:   []string{"all", "dev", "staging", "prod"},
		Actions: []action.Action{
			{Name: "install", Alias: "i", Kind: action.KindInstall, Install: action.InstallLocal, Steps: []string{"npm install"}, Description: "npm install"},
			{Name: "uninstall", Alias: "ui", Kind: action.KindUninstall, Steps: []string{"npm uninstall"}, Description: "npm uninstall"},
			{Name: "install-dev", Alias: "id", Kind: action.KindInstall, Install: action.InstallDev, Steps: []string{"npm install --save-dev"}, Description: "npm install --save-dev"},
			{Name: "install-global", Alias: "ig", Kind: action.KindInstall, Install: action.InstallGlobal, Steps: []string{"npm install --global"}, Description: "npm install --global"},
			{Name: "commit", Alias: "c", Kind: action.KindCommit, Steps: []string{"npm run git:commit {{message}}"}, Description: "npm run git:commit"},
			{Name: "push", Alias: "p", Kind: action.KindDelegate, Steps: []string{"npm run git:push"}, Description: "npm run git:push"},
			{
				Name: "commit-push-publish", Alias: "cpp", Kind: action.KindCommitPublish,
				Steps:       []string{"npm run git:commit {{message}}", "npm run git:push", "npm run pub:{{mode}}"},
				Description: "npm run git:commit:push && npm run pub:(all|dev|staging|prod)",
			},
			{Name: "publish", Alias: "pub", Kind: action.KindPublish, Steps: []string{"npm run pub:{{mode}}"}, Description: "npm run pub:(all|dev|staging|prod)"},
			{Name: "lint", Kind: action.KindDelegate, Steps: []string{"npm run lint"}, Description: "npm run lint"},
			{
				Name: "git-commit-push", Alias: "gcp", Kind: action.KindCommit,
				Steps:       []string{"git add .", "git commit -m {{message}}", "git push"},
				Description: "git commit and push",
			},
		},
	}
}
