package scheduler

import (
	"context"
	"path/filepath"

	"github.com/kballard/go-shellquote"
)

const dateLayout = "2006-01-02_15-04-05"

// buildDocset runs doxygen through cmake, builds the docset, packages it,
// uploads the archive and resets the html directory
func buildDocset(ctx context.Context, cfg Config, steps *Steps) error {
	q := shellquote.Join
	date := cfg.Now.Format(dateLayout)

	buildPath, err := steps.Run(ctx, "Unable to resolve build path",
		q(cfg.HGuild, "source:buildPath",
			"--buildType", cfg.BuildType,
			"--profile", cfg.Profile,
			"--customSourceDir="+cfg.RootDir,
			cfg.SourceName))
	if err != nil {
		return err
	}
	htmlPath := filepath.Join(buildPath, "Documentation", "Doxygen", "html")
	docset := cfg.Identifier + ".docset"

	if _, err := steps.Run(ctx, "Unable to run cmake build",
		q("cmake", "--build", buildPath, "--target", cfg.CMakeTarget)); err != nil {
		return err
	}

	if _, err := steps.Run(ctx, "Unable to make docset",
		q("make", "-C", htmlPath, "docset")+" > /dev/null"); err != nil {
		return err
	}

	if cfg.Logo != "" {
		icons := []struct{ size, name, message string }{
			{"16x16", "icon.png", "Unable to create icon"},
			{"32x32", "icon@2x.png", "Unable to create icon @2x"},
		}
		for _, icon := range icons {
			if _, err := steps.Run(ctx, icon.message,
				q("convert", cfg.Logo, "-resize", icon.size, filepath.Join(htmlPath, docset, icon.name))); err != nil {
				return err
			}
		}
	}

	outFile := cfg.Identifier + "." + date + ".docset.tgz"
	if _, err := steps.Run(ctx, "Failed to package docset",
		q("cd", htmlPath)+" && "+q("tar", "--exclude=.DS_Store", "-cvzf", outFile, docset)); err != nil {
		return err
	}

	if _, err := steps.Run(ctx, "Failed to upload",
		q("curl", "-fsSL", cfg.UploadURL)+" | "+
			q("ruby", "--", "-", cfg.ProjectName, date, docset, filepath.Join(htmlPath, outFile))); err != nil {
		return err
	}

	if _, err := steps.Run(ctx, "Failed to cleanup",
		q("rm", "-Rf", htmlPath)+" && "+q("mkdir", htmlPath)); err != nil {
		return err
	}

	return nil
}
