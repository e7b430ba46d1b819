// Package services implements the driving ports on top of the driven ones.
//
// Services hold the small amount of genuinely internal logic this system
// has: CQL query construction, page-identifier extraction from browser
// URLs, browser-URL templating, and bookmark record construction. All
// transport and persistence work happens behind driven ports.
package services
