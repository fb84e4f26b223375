// Package weather fetches current observations from the FMI (Finnish
// Meteorological Institute) open data WFS service.
//
// The client runs the simple weather stored query for a named place and
// reduces the result to one line: latest temperature and wind speed with
// the observation time. The place defaults to DEFAULT_CITY (or
// Lappeenranta) and no API key is required.
package weather
