package region

import "solarad/internal/domain/entity"

// provinceCentroids maps Thai province names to their approximate centers.
// The external place search anchors its bounding box on these.
var provinceCentroids = map[string]entity.Coordinate{
	"กรุงเทพมหานคร":   {Lat: 13.7563, Lng: 100.5018},
	"สมุทรปราการ":     {Lat: 13.5991, Lng: 100.5998},
	"นนทบุรี":         {Lat: 13.8621, Lng: 100.5144},
	"ปทุมธานี":        {Lat: 14.0208, Lng: 100.5250},
	"พระนครศรีอยุธยา": {Lat: 14.3532, Lng: 100.5683},
	"อ่างทอง":         {Lat: 14.5896, Lng: 100.4549},
	"ลพบุรี":          {Lat: 14.7995, Lng: 100.6534},
	"สิงห์บุรี":       {Lat: 14.8936, Lng: 100.3967},
	"ชัยนาท":          {Lat: 15.1851, Lng: 100.1251},
	"สระบุรี":         {Lat: 14.5289, Lng: 100.9108},
	"ชลบุรี":          {Lat: 13.3611, Lng: 100.9847},
	"ระยอง":           {Lat: 12.6833, Lng: 101.2378},
	"จันทบุรี":        {Lat: 12.6114, Lng: 102.1039},
	"ตราด":            {Lat: 12.2428, Lng: 102.5177},
	"ฉะเชิงเทรา":      {Lat: 13.6904, Lng: 101.0779},
	"ปราจีนบุรี":      {Lat: 14.0509, Lng: 101.3717},
	"นครนายก":         {Lat: 14.2069, Lng: 101.2131},
	"สระแก้ว":         {Lat: 13.8240, Lng: 102.0645},
	"นครราชสีมา":      {Lat: 14.9799, Lng: 102.0977},
	"บุรีรัมย์":       {Lat: 14.9930, Lng: 103.1029},
	"สุรินทร์":        {Lat: 14.8818, Lng: 103.4936},
	"ศรีสะเกษ":        {Lat: 15.1186, Lng: 104.3220},
	"อุบลราชธานี":     {Lat: 15.2287, Lng: 104.8564},
	"ยโสธร":           {Lat: 15.7922, Lng: 104.1452},
	"ชัยภูมิ":         {Lat: 15.8068, Lng: 102.0316},
	"อำนาจเจริญ":      {Lat: 15.8656, Lng: 104.6257},
	"บึงกาฬ":          {Lat: 18.3609, Lng: 103.6466},
	"หนองบัวลำภู":     {Lat: 17.2218, Lng: 102.4260},
	"ขอนแก่น":         {Lat: 16.4322, Lng: 102.8236},
	"อุดรธานี":        {Lat: 17.4156, Lng: 102.7872},
	"เลย":             {Lat: 17.4860, Lng: 101.7223},
	"หนองคาย":         {Lat: 17.8783, Lng: 102.7420},
	"มหาสารคาม":       {Lat: 16.1851, Lng: 103.3006},
	"ร้อยเอ็ด":        {Lat: 16.0538, Lng: 103.6520},
	"กาฬสินธุ์":       {Lat: 16.4314, Lng: 103.5058},
	"สกลนคร":          {Lat: 17.1545, Lng: 104.1348},
	"นครพนม":          {Lat: 17.3920, Lng: 104.7695},
	"มุกดาหาร":        {Lat: 16.5453, Lng: 104.7235},
	"เชียงใหม่":       {Lat: 18.7883, Lng: 98.9853},
	"ลำพูน":           {Lat: 18.5744, Lng: 99.0087},
	"ลำปาง":           {Lat: 18.2888, Lng: 99.4906},
	"อุตรดิตถ์":       {Lat: 17.6200, Lng: 100.0993},
	"แพร่":            {Lat: 18.1445, Lng: 100.1403},
	"น่าน":            {Lat: 18.7756, Lng: 100.7730},
	"พะเยา":           {Lat: 19.1664, Lng: 99.9019},
	"เชียงราย":        {Lat: 19.9105, Lng: 99.8406},
	"แม่ฮ่องสอน":      {Lat: 19.3020, Lng: 97.9654},
	"นครสวรรค์":       {Lat: 15.7030, Lng: 100.1367},
	"อุทัยธานี":       {Lat: 15.3835, Lng: 100.0245},
	"กำแพงเพชร":       {Lat: 16.4827, Lng: 99.5226},
	"ตาก":             {Lat: 16.8840, Lng: 99.1258},
	"สุโขทัย":         {Lat: 17.0078, Lng: 99.8265},
	"พิษณุโลก":        {Lat: 16.8211, Lng: 100.2659},
	"พิจิตร":          {Lat: 16.4429, Lng: 100.3487},
	"เพชรบูรณ์":       {Lat: 16.4190, Lng: 101.1591},
	"ราชบุรี":         {Lat: 13.5283, Lng: 99.8134},
	"กาญจนบุรี":       {Lat: 14.0227, Lng: 99.5328},
	"สุพรรณบุรี":      {Lat: 14.4744, Lng: 100.1177},
	"นครปฐม":          {Lat: 13.8196, Lng: 100.0445},
	"สมุทรสาคร":       {Lat: 13.5475, Lng: 100.2747},
	"สมุทรสงคราม":     {Lat: 13.4098, Lng: 100.0022},
	"เพชรบุรี":        {Lat: 13.1119, Lng: 99.9398},
	"ประจวบคีรีขันธ์": {Lat: 11.8126, Lng: 99.7957},
	"นครศรีธรรมราช":   {Lat: 8.4304, Lng: 99.9631},
	"กระบี่":          {Lat: 8.0863, Lng: 98.9063},
	"พังงา":           {Lat: 8.4511, Lng: 98.5256},
	"ภูเก็ต":          {Lat: 7.8804, Lng: 98.3923},
	"สุราษฎร์ธานี":    {Lat: 9.1382, Lng: 99.3217},
	"ระนอง":           {Lat: 9.9528, Lng: 98.6085},
	"ชุมพร":           {Lat: 10.4931, Lng: 99.1800},
	"สงขลา":           {Lat: 7.1897, Lng: 100.5954},
	"สตูล":            {Lat: 6.6238, Lng: 100.0673},
	"ตรัง":            {Lat: 7.5563, Lng: 99.6114},
	"พัทลุง":          {Lat: 7.6167, Lng: 100.0743},
	"ปัตตานี":         {Lat: 6.8691, Lng: 101.2508},
	"ยะลา":            {Lat: 6.5400, Lng: 101.2800},
	"นราธิวาส":        {Lat: 6.4318, Lng: 101.8231},
}
