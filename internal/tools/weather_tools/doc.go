// Package weather_tools provides the weather_current MCP tool, backed
// by the Finnish Meteorological Institute's open data WFS service.
package weather_tools
