//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// //go:embed 不能引用上级目录，mobile/data/brush.yaml 是根目录 data/brush.yaml 的副本，
// 修改默认配置后需要同步：
//
//	cp data/brush.yaml mobile/data/brush.yaml
package mobile

import "embed"

//go:embed data/brush.yaml
var dataFS embed.FS
