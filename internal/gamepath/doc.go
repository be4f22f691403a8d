// Package gamepath determines the Honkai: Star Rail installation
// directory from heterogeneous, platform-dependent evidence.
//
// The sources are tried in a fixed priority order — first success wins:
//
//  1. GAME_PATH environment override (authoritative)
//  2. Windows: scrape the game's Player.log for the data-load line
//  3. Linux: inspect the honkers-railway launcher's config.json
//
// Every miss is a soft miss: the locator reports "not found" and the
// application continues without cache access. Nothing here is fatal.
package gamepath
