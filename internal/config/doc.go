// Package config loads and merges costclip configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (COSTCLIP_CALL, COSTCLIP_STRIP, COSTCLIP_MACRO,
//     COSTCLIP_FORMAT, COSTCLIP_LOG_LEVEL, COSTCLIP_LOG_FILE)
//  3. Config file ($XDG_CONFIG_HOME/costclip/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged and validated [Config], [Save] to write a
// config file, and [SetField] to update a single key.
package config
