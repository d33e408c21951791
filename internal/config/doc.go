// Package config loads controls.yaml, the configuration of the
// vango-controls CLI.
//
// # Configuration File Structure
//
//	server:
//	  host: localhost
//	  port: 3000
//	  metrics_path: /metrics
//	  ws_path: /live
//	gallery:
//	  title: vango controls
//	publish:
//	  dir: dist
//	  s3:
//	    bucket: my-bucket
//	    prefix: gallery/
//	    region: eu-west-1
//	log:
//	  level: info
//	  format: text
//
// Every field is optional. A missing file, or a field left out, takes the
// default. Command-line flags override file values.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println("Listening on", cfg.Address())
package config
