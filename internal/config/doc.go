// Package config loads and saves the configuration shared by the CLI and
// the hosts.
//
// The configuration is a YAML file:
//
//	name: demo
//	server:
//	  address: ":8080"
//	  metricsPath: /metrics
//	  livePath: /_live
//	log:
//	  level: info
//	  human: true
//	layout:
//	  defaultTab: overview
//	  strict: false
//	  defaults:
//	    id: "1"
//	  tabs:
//	    - key: overview
//	      template: /items/:id/overview
//	      title: Overview
//
// Every scalar can be overridden from the environment with the HEADLESS_
// prefix, e.g. HEADLESS_SERVER_ADDRESS=:9000.
package config
