package ebcdic

// IBM290 (CCSID 290), EBCDIC Japanese Katakana extended.
//
// See https://www.compart.com/en/unicode/charsets/IBM290

// ibm290ToUnicode maps every IBM290 byte to its Unicode code point.
// Katakana and CJK punctuation land in block U+30xx.
var ibm290ToUnicode = [256]CodePoint{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,                 // 0x00-0x07
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,                 // 0x08-0x0f
	0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,                 // 0x10-0x17
	0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,                 // 0x18-0x1f
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0x20-0x27
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0x28-0x2f
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0x30-0x37
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0x38-0x3f
	0x20, 0x3002, 0x300c, 0x300d, 0x3001, 0x30fb, 0x30f2, 0x30a1,   // 0x40-0x47
	0x30a3, 0x30a5, 0xa3, 0x2e, 0x3c, 0x28, 0x2b, 0x7c,             // 0x48-0x4f
	0x26, 0x30a7, 0x30a9, 0x30e3, 0x30e5, 0x30e7, 0x30c3, 0x00,     // 0x50-0x57
	0x30fc, 0x00, 0x21, 0xa5, 0x2a, 0x29, 0x3b, 0xac,               // 0x58-0x5f
	0x2d, 0x2f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0x60-0x67
	0x00, 0x00, 0xa6, 0x2c, 0x25, 0x5f, 0x3e, 0x3f,                 // 0x68-0x6f
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0x70-0x77
	0x00, 0x60, 0x3a, 0x23, 0x40, 0x27, 0x3d, 0x22,                 // 0x78-0x7f
	0x00, 0x30a2, 0x30a4, 0x30a6, 0x30a8, 0x30aa, 0x30ab, 0x30ad,   // 0x80-0x87
	0x30af, 0x30b1, 0x30b3, 0x00, 0x30b5, 0x30b7, 0x30b9, 0x30bb,   // 0x88-0x8f
	0x30bd, 0x30bf, 0x30c1, 0x30c4, 0x30c6, 0x30c8, 0x30ca, 0x30cb, // 0x90-0x97
	0x30cc, 0x30cd, 0x30ce, 0x00, 0x00, 0x30cf, 0x30d2, 0x30d5,     // 0x98-0x9f
	0x00, 0xaf, 0x30d8, 0x30db, 0x30de, 0x30df, 0x30e0, 0x30e1,     // 0xa0-0xa7
	0x30e2, 0x30e4, 0x30e6, 0x00, 0x30e8, 0x30e9, 0x30ea, 0x30eb,   // 0xa8-0xaf
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0xb0-0xb7
	0x00, 0x00, 0x30ec, 0x30ed, 0x30ef, 0x30f3, 0x309b, 0x309c,     // 0xb8-0xbf
	0x00, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,                 // 0xc0-0xc7
	0x48, 0x49, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0xc8-0xcf
	0x00, 0x4a, 0x4b, 0x4c, 0x4d, 0x4e, 0x4f, 0x50,                 // 0xd0-0xd7
	0x51, 0x52, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0xd8-0xdf
	0x24, 0x00, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58,                 // 0xe0-0xe7
	0x59, 0x5a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,                 // 0xe8-0xef
	0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37,                 // 0xf0-0xf7
	0x38, 0x39, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7f,                 // 0xf8-0xff
}

// ibm290Page00 maps U+0000..U+00FF back to IBM290.
var ibm290Page00 = [256]byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, // 0x00-0x07
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, // 0x08-0x0f
	0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, // 0x10-0x17
	0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, // 0x18-0x1f
	0x40, 0x5a, 0x7f, 0x7b, 0xe0, 0x6c, 0x50, 0x7d, // 0x20-0x27
	0x4d, 0x5d, 0x5c, 0x4e, 0x6b, 0x60, 0x4b, 0x61, // 0x28-0x2f
	0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, // 0x30-0x37
	0xf8, 0xf9, 0x7a, 0x5e, 0x4c, 0x7e, 0x6e, 0x6f, // 0x38-0x3f
	0x7c, 0xc1, 0xc2, 0xc3, 0xc4, 0xc5, 0xc6, 0xc7, // 0x40-0x47
	0xc8, 0xc9, 0xd1, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, // 0x48-0x4f
	0xd7, 0xd8, 0xd9, 0xe2, 0xe3, 0xe4, 0xe5, 0xe6, // 0x50-0x57
	0xe7, 0xe8, 0xe9, 0x00, 0x00, 0x00, 0x00, 0x6d, // 0x58-0x5f
	0x79, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x60-0x67
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x68-0x6f
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x70-0x77
	0x00, 0x00, 0x00, 0x00, 0x4f, 0x00, 0x00, 0xff, // 0x78-0x7f
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x80-0x87
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x88-0x8f
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x90-0x97
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0x98-0x9f
	0x00, 0x00, 0x00, 0x4a, 0x00, 0x5b, 0x6a, 0x00, // 0xa0-0xa7
	0x00, 0x00, 0x00, 0x00, 0x5f, 0x00, 0x00, 0xa1, // 0xa8-0xaf
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xb0-0xb7
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xb8-0xbf
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xc0-0xc7
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xc8-0xcf
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xd0-0xd7
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xd8-0xdf
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xe0-0xe7
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xe8-0xef
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xf0-0xf7
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0xf8-0xff
}

// ibm290Page30 maps U+3000..U+30FF back to IBM290, keyed by the low byte.
var ibm290Page30 = [256]byte{
	0x02: 0x41, // 。
	0x0c: 0x42, // 「
	0x0d: 0x43, // 」
	0x01: 0x44, // 、
	0xfb: 0x45, // ・
	0xf2: 0x46, // ヲ
	0xa1: 0x47, // ァ
	0xa3: 0x48, // ィ
	0xa5: 0x49, // ゥ
	0xa7: 0x51, // ェ
	0xa9: 0x52, // ォ
	0xe3: 0x53, // ャ
	0xe5: 0x54, // ュ
	0xe7: 0x55, // ョ
	0xc3: 0x56, // ッ
	0xfc: 0x58, // ー
	0xa2: 0x81, // ア
	0xa4: 0x82, // イ
	0xa6: 0x83, // ウ
	0xa8: 0x84, // エ
	0xaa: 0x85, // オ
	0xab: 0x86, // カ
	0xad: 0x87, // キ
	0xaf: 0x88, // ク
	0xb1: 0x89, // ケ
	0xb3: 0x8a, // コ
	0xb5: 0x8c, // サ
	0xb7: 0x8d, // シ
	0xb9: 0x8e, // ス
	0xbb: 0x8f, // セ
	0xbd: 0x90, // ソ
	0xbf: 0x91, // タ
	0xc1: 0x92, // チ
	0xc4: 0x93, // ツ
	0xc6: 0x94, // テ
	0xc8: 0x95, // ト
	0xca: 0x96, // ナ
	0xcb: 0x97, // ニ
	0xcc: 0x98, // ヌ
	0xcd: 0x99, // ネ
	0xce: 0x9a, // ノ
	0xcf: 0x9d, // ハ
	0xd2: 0x9e, // ヒ
	0xd5: 0x9f, // フ
	0xd8: 0xa2, // ヘ
	0xdb: 0xa3, // ホ
	0xde: 0xa4, // マ
	0xdf: 0xa5, // ミ
	0xe0: 0xa6, // ム
	0xe1: 0xa7, // メ
	0xe2: 0xa8, // モ
	0xe4: 0xa9, // ヤ
	0xe6: 0xaa, // ユ
	0xe8: 0xac, // ヨ
	0xe9: 0xad, // ラ
	0xea: 0xae, // リ
	0xeb: 0xaf, // ル
	0xec: 0xba, // レ
	0xed: 0xbb, // ロ
	0xef: 0xbc, // ワ
	0xf3: 0xbd, // ン
	0x9b: 0xbe, // ゛
	0x9c: 0xbf, // ゜
}
