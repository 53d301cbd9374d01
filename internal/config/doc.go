// Package config loads charm project files.
//
// A project is configured by charm.json, charm.yaml or charm.yml in the
// project directory:
//
//	prefix: acme
//	suffix: app1
//	basePath: /static/charm
//	components: [button, dialog, tooltip]
//	icons:
//	  dir: assets/icons
//	  s3:
//	    bucket: design-assets
//	    prefix: icons/
//	    region: eu-west-1
//	  inline:
//	    logo: <svg>...</svg>
//	serve:
//	  host: localhost
//	  port: 7357
//	log:
//	  level: info
package config
