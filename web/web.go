// Package web は埋め込み静的アセットを提供する。
package web

import "embed"

// Assets は/static/以下で配信されるフロントエンドのファイル群。
//
//go:embed static
var Assets embed.FS
