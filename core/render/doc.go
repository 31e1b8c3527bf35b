// Package render writes merged records back out in the app's XML format.
//
// The root element carries the same metadata the app writes on its own
// backups, so the merged file can be restored like any other export:
//
//	<calls backup_set="..." backup_date="1718000000000" type="incremental" count="42">
//
// count always equals the number of child records written. Files are named
// <prefix>-YYYYMMDDhhmmss.xml after the generation time and are written
// through a temporary file, so a failed write never leaves a partial file.
package render
