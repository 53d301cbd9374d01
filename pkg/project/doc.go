// Package project holds the process-wide charm project configuration:
// the tag-name prefix shared by every scope and the icon set.
//
//	if err := project.UpdateProject(project.Configuration{
//	    Prefix: "acme",
//	    Icons:  map[string]string{"logo": logoSVG},
//	}); err != nil {
//	    return err
//	}
//	project.GetProject().Prefix // "acme"
package project
