// Package charset implements character classification, case folding, and
// character-boundary arithmetic across the encodings the document engine
// supports: UTF-8 and the DBCS code pages 932 (Shift-JIS), 936 (GBK), 949
// (Korean Wansung), 950 (Big5), and 1361 (Korean Johab).
package charset
